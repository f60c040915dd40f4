package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"navzone/navserver/api"
	"navzone/navserver/handle"
	"navzone/pkg/navmesh"

	"github.com/flswld/halo/logger"
	"github.com/go-gl/mathgl/mgl64"
)

func TestMain(m *testing.M) {
	logger.InitLogger(&logger.Config{
		AppName:   "controller_test",
		Level:     logger.ParseLevel("INFO"),
		TrackLine: true,
	})
	os.Exit(m.Run())
}

func newTestController() *Controller {
	zoneManager := navmesh.NewZoneManager(nil)
	vertices := []mgl64.Vec3{{0, 0, 0}, {2, 0, 0}, {2, 0, 1}, {0, 0, 1}}
	faces := [][3]int{{0, 2, 1}, {0, 3, 2}}
	zoneManager.SetZone("rect", navmesh.BuildZone(vertices, faces, nil))
	return NewController(handle.NewHandle(nil, zoneManager))
}

func doRequest(c *Controller, method string, path string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c.Handler().ServeHTTP(w, req)
	return w
}

func TestZoneList(t *testing.T) {
	c := newTestController()
	w := doRequest(c, http.MethodGet, "/zone/list", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %v", w.Code)
	}
	infoList := make([]*api.ZoneInfo, 0)
	if err := json.Unmarshal(w.Body.Bytes(), &infoList); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if len(infoList) != 1 || infoList[0].ZoneName != "rect" || infoList[0].TriangleCount != 2 {
		t.Fatalf("unexpected zone list: %s", w.Body.String())
	}
}

func TestQueryPath(t *testing.T) {
	c := newTestController()
	body := `{"query_id": 5, "group_id": 0, "source_pos": {"x": 1.5, "y": 0, "z": 0.2}, "destination_pos": [{"x": 0.5, "y": 0, "z": 0.8}]}`
	w := doRequest(c, http.MethodPost, "/zone/rect/path", body)
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %v %s", w.Code, w.Body.String())
	}
	rsp := new(api.QueryPathRsp)
	if err := json.Unmarshal(w.Body.Bytes(), rsp); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if rsp.QueryId != 5 || rsp.QueryStatus != api.StatusSucc || len(rsp.Corners) != 1 || rsp.Corners[0].X != 0.5 {
		t.Fatalf("unexpected rsp: %s", w.Body.String())
	}

	w = doRequest(c, http.MethodPost, "/zone/rect/path", `{"group_id": 0}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing positions should give 400, got %v", w.Code)
	}
	w = doRequest(c, http.MethodPost, "/zone/rect/path", `{`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("malformed body should give 400, got %v", w.Code)
	}
	w = doRequest(c, http.MethodPost, "/zone/missing/path", body)
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing zone should give 404, got %v", w.Code)
	}
}

func TestGroupAndRandom(t *testing.T) {
	c := newTestController()
	w := doRequest(c, http.MethodPost, "/zone/rect/group", `{"pos": {"x": 1, "y": 0, "z": 0.5}}`)
	groupRsp := new(api.GetGroupRsp)
	if err := json.Unmarshal(w.Body.Bytes(), groupRsp); err != nil || w.Code != http.StatusOK {
		t.Fatalf("unexpected rsp: %v %s", w.Code, w.Body.String())
	}
	if groupRsp.Status != api.StatusSucc || groupRsp.GroupId != 0 {
		t.Fatalf("want group 0, got %+v", groupRsp)
	}
	w = doRequest(c, http.MethodPost, "/zone/rect/random", `{"group_id": 0}`)
	randomRsp := new(api.RandomPointRsp)
	if err := json.Unmarshal(w.Body.Bytes(), randomRsp); err != nil || w.Code != http.StatusOK {
		t.Fatalf("unexpected rsp: %v %s", w.Code, w.Body.String())
	}
	if randomRsp.Status != api.StatusSucc || randomRsp.Pos == nil {
		t.Fatalf("random point should succeed, got %+v", randomRsp)
	}
	w = doRequest(c, http.MethodPost, "/zone/rect/random", `{"group_id": 3}`)
	randomRsp = new(api.RandomPointRsp)
	_ = json.Unmarshal(w.Body.Bytes(), randomRsp)
	if randomRsp.Status != api.StatusFail {
		t.Fatalf("unknown group should fail, got %+v", randomRsp)
	}
}
