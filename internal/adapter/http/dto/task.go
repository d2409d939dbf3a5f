package dto

type TaskItem struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	Priority    string `json:"priority"`
	CreatedAt   string `json:"createdAt"`
}

type DeleteTaskResponse struct {
	Message string   `json:"message"`
	Task    TaskItem `json:"task"`
}
