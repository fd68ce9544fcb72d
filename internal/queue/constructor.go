package queue

import (
	"encoding/json"
	"log"

	"github.com/hibiken/asynq"
)

// Nothing in the pipeline is retried, so every task is enqueued with MaxRetry(0).
func enqueue(client Enqueuer, taskType string, payload any) error {
	taskPayload, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	task := asynq.NewTask(taskType, taskPayload)

	_, err = client.Enqueue(task, asynq.MaxRetry(0))
	if err != nil {
		return err
	}

	log.Printf("Task enqueued: %s %+v", taskType, payload)
	return nil
}

func EnqueueGeneratePosts(client Enqueuer, payload GeneratePostsPayload) error {
	return enqueue(client, TaskTypeGeneratePosts, payload)
}

func EnqueuePublishPosts(client Enqueuer, payload PublishPostsPayload) error {
	return enqueue(client, TaskTypePublishPosts, payload)
}
