package membership

import "context"

// ApplicationService defines the use cases of the membership form.
type ApplicationService interface {
	// Submit validates and stores an application.
	Submit(ctx context.Context, application *Application) (*Application, error)

	// List returns every application, newest first.
	List(ctx context.Context) ([]*Application, error)
}

// ApplicationRepository defines the persistence operations for applications
type ApplicationRepository interface {
	Create(ctx context.Context, application *Application) error
	List(ctx context.Context) ([]*Application, error)
}
