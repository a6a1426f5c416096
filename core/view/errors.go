package view

import "errors"

// ErrNoEngine is returned when rendering is attempted without a configured
// template directory, or the directory held no templates.
var ErrNoEngine = errors.New("no template engine configured")
