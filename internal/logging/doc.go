// Package logging provides the logging interface used by giftcalc.
// Diagnostics go to stderr through zerolog so stdout carries only the report.
package logging
