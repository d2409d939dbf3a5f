package apierrors

const (
	MsgTaskNotFound         = "taskNotFound"
	MsgInvalidPriorityLevel = "invalidPriorityLevel"
	MsgInvalidJSONPayload   = "invalidJsonPayload"
	MsgTitleRequired        = "titleRequired"
	MsgDescriptionRequired  = "descriptionRequired"
	MsgTitleEmpty           = "titleEmpty"
	MsgDescriptionEmpty     = "descriptionEmpty"
	MsgCompletedNotBoolean  = "completedNotBoolean"
	MsgPriorityInvalid      = "priorityInvalid"
	MsgTaskDeleted          = "taskDeleted"
	MsgFailListTasks        = "failListTasks"
	MsgFailGetTask          = "failGetTask"
	MsgFailCreateTask       = "failCreateTask"
	MsgFailUpdateTask       = "failUpdateTask"
	MsgFailDeleteTask       = "failDeleteTask"
)
