/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package openapi

import (
	"errors"
	"slices"
)

var ErrInvalidTransactionType = errors.New("invalid transaction type: must be one of earned, redeemed or refund")

//nolint:gochecknoglobals
var transactionTypes = []string{"earned", "redeemed", "refund"}

// TransactionType is a transaction type query filter.
type TransactionType struct {
	Value string
}

func (t *TransactionType) UnmarshalText(text []byte) error {
	if !slices.Contains(transactionTypes, string(text)) {
		return ErrInvalidTransactionType
	}

	*t = TransactionType{
		Value: string(text),
	}

	return nil
}
