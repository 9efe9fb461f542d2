package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/cloudtasks/apiv2/cloudtaskspb"
	"github.com/google/uuid"
	"github.com/huhyoujung/footballlog-sub002/config"
	"github.com/huhyoujung/footballlog-sub002/internal/app/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const NotificationTriggerPath = "/v1/triggers/notification"

// NotificationDispatcher enqueues notifications on a Cloud Tasks queue. The queue calls the notification trigger
// endpoint with an OIDC token of the configured service account.
type NotificationDispatcher struct {
	client TasksClient
	config config.GoogleCloud
	clock  Clock
	logger Logger
}

func NewNotificationDispatcher(client TasksClient, config config.GoogleCloud, clock Clock, logger Logger) *NotificationDispatcher {
	return &NotificationDispatcher{client: client, config: config, clock: clock, logger: logger}
}

func (d *NotificationDispatcher) Dispatch(ctx context.Context, notification models.Notification) error {
	body, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	queue := d.queuePath()
	name := fmt.Sprintf("%s/tasks/notification-%s", queue, uuid.NewString())

	task, err := d.client.CreateTask(ctx, &cloudtaskspb.CreateTaskRequest{
		Parent: queue,
		Task: &cloudtaskspb.Task{
			Name:         name,
			ScheduleTime: timestamppb.New(d.clock.Now()),
			MessageType: &cloudtaskspb.Task_HttpRequest{
				HttpRequest: &cloudtaskspb.HttpRequest{
					HttpMethod: cloudtaskspb.HttpMethod_POST,
					Url:        d.config.TasksBaseURL + NotificationTriggerPath,
					Headers:    map[string]string{"Content-Type": "application/json"},
					Body:       body,
					AuthorizationHeader: &cloudtaskspb.HttpRequest_OidcToken{
						OidcToken: &cloudtaskspb.OidcToken{
							ServiceAccountEmail: d.config.ServiceAccountEmail,
							Audience:            d.config.TasksBaseURL,
						},
					},
				},
			},
		},
	})
	if status.Code(err) == codes.AlreadyExists {
		d.logger.Debug().Str("task", name).Msg("notification task already exists")
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to create notification task: %w", err)
	}

	d.logger.Debug().Str("task", task.GetName()).Int("recipients", len(notification.UserIDs)).Msg("notification task created")

	return nil
}

func (d *NotificationDispatcher) queuePath() string {
	return fmt.Sprintf("projects/%s/locations/%s/queues/%s", d.config.ProjectID, d.config.Region, d.config.NotificationQueue)
}
