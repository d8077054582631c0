// Package field ties the configuration resolver, the validation pipeline and
// the error presentation manager together for a single control instance, and
// publishes the control into a page registry when one is supplied.
//
// Fields are driven by host events (option refreshes, value changes, page
// submission) and are not safe for concurrent use.
package field
