// Package complaint provides the Complaint aggregate: an issue raised against an
// order from one of the order boards. Complaints never change the order's status.
package complaint
