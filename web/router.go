// Package web exposes the attenuation calculator over HTTP.
package web

import (
	"net/http"

	"github.com/go-chi/chi"

	"github.com/gilliss/AttenCalc/atten"
	conf "github.com/gilliss/AttenCalc/config"
	"github.com/gilliss/AttenCalc/material"
)

var log = conf.NamedLogger("web")

type handler struct {
	calc   atten.Calculator
	loader material.Loader
}

// NewRouter builds the HTTP routes serving attenuation requests.
func NewRouter(config *conf.Config) http.Handler {
	loader := material.Loader{DataDir: config.DataDir}
	h := &handler{
		calc:   atten.Calculator{Source: material.NewCache(loader)},
		loader: loader,
	}

	router := chi.NewRouter()
	router.Post("/attenuate", h.attenuateHandler)
	router.Get("/materials", h.materialsHandler)
	return router
}
