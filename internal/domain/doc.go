// Package domain contains the core business entities of the task
// service. It is independent of any specific storage or delivery
// mechanism; persistence and HTTP concerns live in other packages.
package domain
