package logs

type LogServiceAPI interface {
	Log(entry AuditLog, metadata interface{}) error
	GetLogs(input LogFilterInput) ([]AuditLog, LogAggregates, int64, error)
}

var _ LogServiceAPI = (*LogService)(nil)
