package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	applyResultAccepted  = "accepted"
	applyResultDuplicate = "duplicate"
	applyResultNotFound  = "mission_not_found"
	applyResultInvalid   = "invalid"
	applyResultError     = "error"
)

var applyCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "studio",
	Subsystem: "mission",
	Name:      "applications_total",
	Help:      "任务申请的处理结果",
}, []string{"result", "notified"})
