package queue

import (
	"github.com/hibiken/asynq"
	"github.com/maheshrc27/content-pipeline/internal/service"
)

type Queue struct {
	cs service.ContentService
	ps service.PublishService
}

func NewQueue(cs service.ContentService, ps service.PublishService) *Queue {
	return &Queue{
		cs: cs,
		ps: ps,
	}
}

const (
	TaskTypeGeneratePosts = "posts:generate"
	TaskTypePublishPosts  = "posts:publish"
)

type GeneratePostsPayload struct {
	Topic    string `json:"topic"`
	Audience string `json:"audience"`
	Count    int    `json:"count"`
}

type PublishPostsPayload struct {
	MaxBatch int `json:"max_batch"`
}

// Enqueuer is satisfied by *asynq.Client.
type Enqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Register binds the task handlers on mux.
func (j *Queue) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(TaskTypeGeneratePosts, j.HandleGeneratePostsTask)
	mux.HandleFunc(TaskTypePublishPosts, j.HandlePublishPostsTask)
}
