package statsviz_serve

import (
	"net/http"

	"github.com/arl/statsviz"
)

// Serve 阻塞运行运行时指标可视化页面 访问 http://addr/debug/statsviz/
func Serve(addr string) error {
	mux := http.NewServeMux()
	err := statsviz.Register(mux)
	if err != nil {
		return err
	}
	return http.ListenAndServe(addr, mux)
}
