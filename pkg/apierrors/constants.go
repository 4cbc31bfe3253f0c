package apierrors

const (
	MsgInvalidProjectPayload = "invalidProjectPayload"
	MsgInvalidTaskPayload    = "invalidTaskPayload"
	MsgInvalidTaskID         = "invalidTaskID"
	MsgInvalidDeadline       = "invalidDeadline"
	MsgMissingDeadline       = "missingDeadline"
	MsgProjectNotFound       = "projectNotFound"
	MsgTaskNotFound          = "taskNotFound"
)
