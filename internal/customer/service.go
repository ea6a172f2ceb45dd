// Package customer holds the service every registration style constructs.
package customer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/km-arc/go-beans/internal/datasource"
)

// Style is the label naming the registration style that built a Service.
type Style string

// Service depends on a DataSource and records which style wired it. It is
// immutable after construction.
type Service struct {
	dataSource *datasource.DataSource
	style      Style
}

// NewService builds the service and logs the dependencies it was given.
func NewService(ds *datasource.DataSource, style Style, logger *zap.Logger) *Service {
	logger.Info("injected the datasource " + ds.String())
	logger.Info(fmt.Sprintf("config style is '%s'", style), zap.String("style", string(style)))
	return &Service{dataSource: ds, style: style}
}

func (s *Service) DataSource() *datasource.DataSource { return s.dataSource }

// Label returns the token of the style that built the service.
func (s *Service) Label() string { return string(s.style) }
