// Package sanitizer turns HTML fragments into plain text before they are slugged
// or otherwise transformed.
//
// It is backed by bluemonday's strict policy, which drops all elements and
// attributes (and the bodies of script and style elements). Entities are decoded
// afterwards so text like "&amp;" does not leak into slugs as "amp".
//
//	sanitizer.StripTags(`<h1>Caf&eacute; <em>menu</em></h1>`) // "Café menu"
package sanitizer
