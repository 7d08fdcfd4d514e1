/*
The worldclock command shows a time in each of a list of timezones. With no
arguments it shows the current time. A time (HH:MM) and, optionally, a date
(YYYY-MM-DD) can be given, either as trailing arguments or as parameters, in
which case they are taken to be in the local timezone, or in UTC if the utc
parameter is given, and that moment is shown in each of the timezones.

The list of timezones can be replaced, either on the command line or in a
configuration file.
*/
package main
