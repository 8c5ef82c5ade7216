// Package app is the page controller. Frontends turn user input into
// Actions, hand them to Controller.Dispatch and rebuild their widgets from
// the returned View. The controller owns the session and never talks to a
// GUI toolkit, so the whole interaction flow can be tested headless.
package app
