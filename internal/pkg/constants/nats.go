package constants

// NATS Subjects
const (
	// Dispatch service lifecycle events
	SubjectRequestCreated   = "dispatch.request.created"
	SubjectRequestAccepted  = "dispatch.request.accepted"
	SubjectRequestRejected  = "dispatch.request.rejected"
	SubjectRequestCancelled = "dispatch.request.cancelled"
	SubjectRideStarted      = "dispatch.request.started"
	SubjectRideCompleted    = "dispatch.request.completed"

	// Matching service
	SubjectProviderOnline  = "matching.provider.online"
	SubjectProviderOffline = "matching.provider.offline"
)

// NATS queue groups
const (
	QueueGroupArchiver = "archiver"
)
