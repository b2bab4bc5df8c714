// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bitmark-inc/kitties/fault"
)

const (
	metricsNamespace = "kitties"
)

type metrics struct {
	operations *prometheus.CounterVec
	rejections *prometheus.CounterVec
}

// nil registerer: counters are kept but not exported
func newMetrics(registerer prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "operations_total",
				Help:      "Committed registry operations.",
			},
			[]string{"operation"},
		),
		rejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "rejections_total",
				Help:      "Registry operations rejected with an error.",
			},
			[]string{"operation", "class"},
		),
	}

	if nil == registerer {
		return m, nil
	}
	if err := registerer.Register(m.operations); nil != err {
		return nil, err
	}
	if err := registerer.Register(m.rejections); nil != err {
		registerer.Unregister(m.operations)
		return nil, err
	}
	return m, nil
}

func (m *metrics) committed(operation string) {
	m.operations.WithLabelValues(operation).Inc()
}

func (m *metrics) rejected(operation string, err error) {
	m.rejections.WithLabelValues(operation, fault.Class(err)).Inc()
}
