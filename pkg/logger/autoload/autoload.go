// Package autoload initializes the process logger from LOG_* environment
// variables. Blank-import it from main.
package autoload

import (
	configx "github.com/jaxfield/assistant/pkg/config"
	logx "github.com/jaxfield/assistant/pkg/logger"
)

func init() {
	logx.Init(*configx.MustNew[logx.Config]("LOG"))
}
