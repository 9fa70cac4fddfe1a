// Package mhrono is a foundation library for span/endpoint algebra,
// rule-driven trading-calendar evaluation, and copy-on-write time series.
//
// It treats Gregorian calendar arithmetic and IANA time zone resolution as
// an external collaborator, delegating both to the standard time package.
// Everything else — endpoint ordering, span algebra, the calendar's
// forward next-span walk, and the series container's lookup queries — is
// implemented here.
package mhrono
