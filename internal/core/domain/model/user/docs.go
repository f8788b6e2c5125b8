// Package user provides the User aggregate: a login identity with a bcrypt
// password hash and a staff flag granting back-office access.
package user
