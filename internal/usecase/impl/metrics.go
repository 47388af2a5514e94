package impl

import "blogauth/internal/usecase"

type noopMetrics struct{}

func (noopMetrics) RecordLogin(string) {}
func (noopMetrics) RecordCredentialChange(string, string) {}
func (noopMetrics) RecordMirrorSync(string, int) {}
func (noopMetrics) RecordReconcileRepaired(int) {}

func metricsOrNoop(recorder usecase.MetricsRecorder) usecase.MetricsRecorder {
	if recorder == nil {
		return noopMetrics{}
	}

	return recorder
}

// Result labels shared with infra/metrics.
const (
	resultSuccess = "success"
	resultFailure = "failure"
	resultPartial = "partial"
)
