package status_test

import (
	"testing"

	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/controller"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/physics"
	"github.com/stretchr/testify/require"
)

type flatCamera struct{}

func (flatCamera) ForwardRight() (common.Vec3, common.Vec3) {
	return common.V3(0, 0, 1), common.V3(1, 0, 0)
}

func newController(t *testing.T) *controller.Controller {
	t.Helper()
	ctrl, err := controller.New(component.DefaultAbilityConfig(), controller.Collaborators{
		Camera: flatCamera{},
		Mover:  physics.NewMover(physics.Terrain{}, 0.5, common.Vec3{}),
	}, controller.WithLogger(quiet()))
	require.NoError(t, err)
	return ctrl
}
