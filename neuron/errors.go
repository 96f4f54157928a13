// SPDX-License-Identifier: MIT

package neuron

import "errors"

var (
	// ErrNilActivation is returned by Forward when no activation is installed.
	ErrNilActivation = errors.New("neuron: nil activation")

	// ErrUnknownActivation is returned by Lookup for an unregistered name.
	ErrUnknownActivation = errors.New("neuron: unknown activation")
)
