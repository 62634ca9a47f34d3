// Package view holds the HTML components served by the handler package.
// Components are written in view.templ; view_templ.go is generated from it
// with `templ generate` and must not be edited by hand.
package view
