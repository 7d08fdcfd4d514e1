/*
Package zones holds the list of timezones in which an instant is shown and
renders an instant in each of them. The timezone rules come from the IANA
database which is embedded in the program so the results do not depend on
the zone files installed on the host.
*/
package zones
