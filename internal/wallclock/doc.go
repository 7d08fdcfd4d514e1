/*
Package wallclock turns an optional wall-clock time and an optional date,
each given as a string, into a single instant. Any part which is not given
is taken from the current time in the chosen reference frame, which is
either UTC or the local timezone.

The current time is obtained through a Clock so that a fixed time can be
supplied when testing.
*/
package wallclock
