// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package model

import (
	"errors"
	"fmt"

	"github.com/consensys/go-smartimputer/pkg/coltype"
	"github.com/consensys/go-smartimputer/pkg/dataset"
	"github.com/consensys/go-smartimputer/pkg/table"
	log "github.com/sirupsen/logrus"
)

// ErrNotFitted is returned when predicting with a model which has not been fitted.
var ErrNotFitted = errors.New("model not fitted")

// ErrNoObservations is returned when fitting against a label column which has
// no (non-missing) values.
var ErrNoObservations = errors.New("no observations for label")

// Model is a predictor for the values of a single (label) column of a dataset.
// A model is constructed from the name and type of its label column, fitted
// against a dataset and then used to predict label values.  Every prediction
// made by a model must satisfy the label's column type.
type Model interface {
	// Label returns the name and type of the column being predicted.
	Label() (string, coltype.ColumnType)
	// Fit this model against the given dataset.
	Fit(data *dataset.SmartDataset) error
	// Predict returns n predicted values for the label.
	Predict(n uint) ([]any, error)
}

// ModeImputer is a simple model which predicts the most frequently observed
// value of its label.  Ties are broken in favour of the value which reached the
// highest count first.
type ModeImputer struct {
	name      string
	labelType coltype.ColumnType
	mode      any
	fitted    bool
}

// NewModeImputer constructs an (unfitted) mode imputer for a given label.
func NewModeImputer(name string, labelType coltype.ColumnType) *ModeImputer {
	return &ModeImputer{name, labelType, nil, false}
}

// Label returns the name and type of the column being predicted.
func (p *ModeImputer) Label() (string, coltype.ColumnType) {
	return p.name, p.labelType
}

// Fit determines the most frequent value in the label column of the dataset.
// Missing (nil) values are ignored.  Any previous fit is discarded, even if
// this fit fails.
func (p *ModeImputer) Fit(data *dataset.SmartDataset) error {
	var (
		column = data.Data().Column(p.name)
		counts = make(map[string]uint)
		best   uint
	)
	//
	p.mode, p.fitted = nil, false
	//
	if column == nil {
		return fmt.Errorf("label column %s not found", p.name)
	}
	//
	for _, value := range column.Values() {
		if value == nil {
			continue
		}
		//
		key := valueKey(value)
		counts[key]++
		// Strictly greater, hence the first value wins ties.
		if counts[key] > best {
			best = counts[key]
			p.mode = value
		}
	}
	//
	if best == 0 {
		return fmt.Errorf("label column %s: %w", p.name, ErrNoObservations)
	}
	//
	p.fitted = true
	//
	log.Debugf("fitted mode imputer for %s (mode %v observed %d times)", p.name, p.mode, best)
	//
	return nil
}

// Predict returns n copies of the most frequent label value.
func (p *ModeImputer) Predict(n uint) ([]any, error) {
	if !p.fitted {
		return nil, ErrNotFitted
	}
	//
	predictions := make([]any, n)
	//
	for i := range predictions {
		predictions[i] = p.mode
	}
	//
	if err := p.validatePredictions(predictions); err != nil {
		return nil, err
	}
	//
	return predictions, nil
}

// Check predictions are consistent with the label type.
func (p *ModeImputer) validatePredictions(predictions []any) error {
	for i, v := range predictions {
		if err := p.labelType.Validate(v); err != nil {
			return &dataset.ColumnValidationError{Column: p.name, Row: uint(i), Cause: err}
		}
	}
	//
	return nil
}

// Determine a key for counting occurrences of a value, such that integers are
// counted together regardless of their representation (e.g. int vs
// json.Number).
func valueKey(value any) string {
	if n, ok := coltype.AsInteger(value); ok {
		return n.String()
	}
	//
	return fmt.Sprintf("%T:%s", value, table.FormatValue(value))
}
