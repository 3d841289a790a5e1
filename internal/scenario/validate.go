package scenario

import (
	"fmt"

	"go.uber.org/multierr"

	flow "github.com/grindlemire/go-flow"
)

// Problems reports every setting that the engine would work around rather
// than honor. A scenario with problems still runs.
func (s *Scenario) Problems() error {
	err := s.Config().Validate()

	c := s.Container
	if (flow.Size{Width: c.Width, Height: c.Height}).IsUnmeasured() && c.Measured == nil && !c.AutoSize {
		err = multierr.Append(err, fmt.Errorf("container %dx%d is unmeasured and has no measured_size", c.Width, c.Height))
	}
	if c.MinSize != nil && c.MaxSize != nil {
		if c.MaxSize.Width > 0 && c.MinSize.Width > c.MaxSize.Width {
			err = multierr.Append(err, fmt.Errorf("min_size width %d exceeds max_size width %d", c.MinSize.Width, c.MaxSize.Width))
		}
		if c.MaxSize.Height > 0 && c.MinSize.Height > c.MaxSize.Height {
			err = multierr.Append(err, fmt.Errorf("min_size height %d exceeds max_size height %d", c.MinSize.Height, c.MaxSize.Height))
		}
	}
	if !c.AutoSize && (c.MinSize != nil || c.MaxSize != nil) {
		err = multierr.Append(err, fmt.Errorf("min_size and max_size only apply when auto_size is set"))
	}

	for i, item := range s.Items {
		if item.Width == 0 || item.Height == 0 {
			err = multierr.Append(err, fmt.Errorf("item %d (%s) has an empty extent %dx%d", i, item.label(i), item.Width, item.Height))
		}
	}
	return err
}

func (item Item) label(i int) string {
	if item.Name != "" {
		return item.Name
	}
	return fmt.Sprintf("item-%d", i+1)
}
