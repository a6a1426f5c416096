// Package view is the template-rendering collaborator: a thin wrapper over
// html/template that loads every *.html file from one directory and renders
// a named template against a variable map. The dispatcher never calls it;
// application handlers do.
package view
