package export

import (
	"fmt"
	"os"

	"github.com/piwi3910/JointCut/internal/gcode"
	"github.com/piwi3910/JointCut/internal/layout"
	"github.com/piwi3910/JointCut/internal/model"
)

// WriteGCode writes CNC profile-cut GCode for the plan using the default
// cut settings.
func WriteGCode(path string, req model.Request, plan layout.Plan) error {
	code := gcode.New(gcode.DefaultSettings()).Generate(req, plan)
	if err := os.WriteFile(path, []byte(code), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
