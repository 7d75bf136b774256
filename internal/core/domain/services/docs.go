// Package services contains stateless domain services: the settlement fee
// calculator and the strike policy. Both are pure computations configured
// once at startup and shared across use cases.
package services
