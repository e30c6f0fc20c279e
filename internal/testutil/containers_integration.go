//go:build integration

package testutil

import (
	"context"
	"log"
	"os"

	tc "github.com/testcontainers/testcontainers-go"
)

var tcLog = log.New(os.Stdout, "[tc] ", log.LstdFlags)

// StopFunc — остановка контейнера и связанных ресурсов.
type StopFunc func(context.Context) error

// lifecycle — журнал создания, готовности и остановки контейнера.
func lifecycle(kind string) tc.CustomizeRequestOption {
	note := func(stage string) tc.ContainerHook {
		return func(_ context.Context, c tc.Container) error {
			id := c.GetContainerID()
			if len(id) > 12 {
				id = id[:12]
			}
			tcLog.Printf("%s %s id=%s", kind, stage, id)
			return nil
		}
	}
	return tc.WithLifecycleHooks(tc.ContainerLifecycleHooks{
		PostStarts:     []tc.ContainerHook{note("started")},
		PostReadies:    []tc.ContainerHook{note("ready")},
		PostTerminates: []tc.ContainerHook{note("terminated")},
	})
}
