// Package profile provides the user account model: the closed Role set with
// its capability and navigation table, account activation status, and the
// Profile entity linking drivers to the admin they report to.
package profile
