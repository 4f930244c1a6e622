// Package services implements the driving ports: intake normalisation,
// batch submission, and artifact download.
package services
