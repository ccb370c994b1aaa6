package rest

import (
	"net/http"

	"bitbucket.org/kleinnic74/geoangles/swarm"
	"github.com/gorilla/mux"
)

type PeersAPI struct {
	peers *swarm.Controller
}

func NewPeersAPI(peers *swarm.Controller) *PeersAPI {
	return &PeersAPI{peers: peers}
}

func (p *PeersAPI) InitRoutes(router *mux.Router) {
	router.HandleFunc("/peers", p.listPeers).Methods(http.MethodGet)
}

func (p *PeersAPI) listPeers(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Service   string       `json:"service"`
		Instances []swarm.Peer `json:"instances"`
	}{
		Service:   swarm.GeoAnglesSVCName,
		Instances: p.peers.GetPeers(),
	}
	if data.Instances == nil {
		data.Instances = []swarm.Peer{}
	}
	Respond(r).WithJSON(w, http.StatusOK, &simplePayload{Data: data})
}
