package root

import (
	"github.com/llehouerou/chartwaves/internal/catalog"
	"github.com/llehouerou/chartwaves/internal/chartdetails"
	"github.com/llehouerou/chartwaves/internal/dashboard"
	"github.com/llehouerou/chartwaves/internal/player"
	"github.com/llehouerou/chartwaves/internal/playerview"
)

// Factories build the child screens. Tests substitute their own.
type Factories struct {
	Dashboard func(output func(dashboard.Output)) *dashboard.Component
	Details   func(p chartdetails.Params, output func(chartdetails.Output)) *chartdetails.Component
	Player    func(tracks []catalog.Track, output func(playerview.Output)) *playerview.Component
}

// DefaultFactories wires the screens to the catalog client and audio engine.
func DefaultFactories(client catalog.Client, engine player.Interface) Factories {
	return Factories{
		Dashboard: func(output func(dashboard.Output)) *dashboard.Component {
			return dashboard.New(client, output)
		},
		Details: func(p chartdetails.Params, output func(chartdetails.Output)) *chartdetails.Component {
			return chartdetails.New(p, client, output)
		},
		Player: func(tracks []catalog.Track, output func(playerview.Output)) *playerview.Component {
			return playerview.New(tracks, engine, output)
		},
	}
}
