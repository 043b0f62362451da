package apierrors

const (
	MsgValidationError      = "validationError"
	MsgGoalNotFound         = "goalNotFound"
	MsgTaskNotFound         = "taskNotFound"
	MsgFailGeneratePlan     = "failGeneratePlan"
	MsgFailRefinePlan       = "failRefinePlan"
	MsgMissingAPIKey        = "missingApiKey"
	MsgFailListGoals        = "failListGoals"
	MsgFailGetGoal          = "failGetGoal"
	MsgFailUpdateTaskStatus = "failUpdateTaskStatus"
	MsgFailDeleteGoal       = "failDeleteGoal"
	MsgTaskStatusUpdated    = "taskStatusUpdated"
	MsgGoalDeleted          = "goalDeleted"
)
