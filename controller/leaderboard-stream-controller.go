package controller

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"geeksboard/config"
	"geeksboard/metrics"
	"geeksboard/scoring"
	"geeksboard/service"
	"geeksboard/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type LeaderboardStreamController struct {
	leaderboardService *scoring.LeaderboardService
	groupService       *service.GroupService
	mu                 sync.Mutex
	connections        map[int]map[*websocket.Conn]bool
}

func NewLeaderboardStreamController() *LeaderboardStreamController {
	controller := &LeaderboardStreamController{
		leaderboardService: scoring.NewLeaderboardService(config.DatabaseConnection()),
		groupService:       service.NewGroupService(),
		connections:        make(map[int]map[*websocket.Conn]bool),
	}
	controller.StartBoardUpdater()
	return controller
}

func setupLeaderboardStreamController() []RouteInfo {
	e := NewLeaderboardStreamController()
	routes := []RouteInfo{
		{Method: "GET", Path: "/groups/:group_id/leaderboard/ws", HandlerFunc: e.WebSocketHandler, Authenticated: true},
	}
	return routes
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// allow any host origin to connect to the websocket
		return true
	},
}

// @id LeaderboardWebSocket
// @Description Websocket for leaderboard updates. The full board is sent on connect, then only changed entries.
// @Tags groups
// @Router /groups/{group_id}/leaderboard/ws [get]
// @Param group_id path int true "Group Id"
// @Success 200 {array} BoardEntryDiff
func (e *LeaderboardStreamController) WebSocketHandler(c *gin.Context) {
	groupId, err := strconv.Atoi(c.Param("group_id"))
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if _, err := e.groupService.GetGroupForMentor(groupId, getMentorId(c)); err != nil {
		c.JSON(404, gin.H{"error": "Group not found"})
		return
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		http.NotFound(c.Writer, c.Request)
		return
	}
	defer conn.Close()

	board, err := e.leaderboardService.Snapshot(groupId, time.Now())
	if err != nil {
		return
	}
	serialized, err := json.Marshal(toBoardResponse(board))
	if err != nil {
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, serialized); err != nil {
		return
	}

	e.mu.Lock()
	if _, ok := e.connections[groupId]; !ok {
		e.connections[groupId] = make(map[*websocket.Conn]bool)
	}
	e.connections[groupId][conn] = true
	e.mu.Unlock()
	metrics.LeaderboardSubscribersGauge.Inc()

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			e.mu.Lock()
			delete(e.connections[groupId], conn)
			if len(e.connections[groupId]) == 0 {
				delete(e.connections, groupId)
			}
			e.mu.Unlock()
			metrics.LeaderboardSubscribersGauge.Dec()
			return
		}
	}
}

func (e *LeaderboardStreamController) StartBoardUpdater() {
	go func() {
		for {
			e.mu.Lock()
			groupIds := utils.Keys(e.connections)
			e.mu.Unlock()
			for _, groupId := range groupIds {
				diff, err := e.leaderboardService.GetNewDiff(groupId, time.Now())
				if err != nil {
					continue
				}
				serialized, err := json.Marshal(toBoardResponse(diff))
				if err != nil {
					log.Println(err)
					continue
				}
				e.mu.Lock()
				for conn := range e.connections[groupId] {
					if err := conn.WriteMessage(websocket.TextMessage, serialized); err != nil {
						conn.Close()
						delete(e.connections[groupId], conn)
						metrics.LeaderboardSubscribersGauge.Dec()
					}
				}
				e.mu.Unlock()
			}
			time.Sleep(5 * time.Second)
		}
	}()
}

type BoardEntryDiff struct {
	Entry     *LeaderboardEntry `json:"entry"`
	FieldDiff []string          `json:"field_diff,omitempty"`
	DiffType  scoring.Difftype  `json:"diff_type"`
}

func toBoardResponse(board scoring.BoardMap) []*BoardEntryDiff {
	response := make([]*BoardEntryDiff, 0)
	for _, diff := range board {
		response = append(response, &BoardEntryDiff{
			Entry:     toLeaderboardEntry(diff.Entry),
			FieldDiff: diff.FieldDiff,
			DiffType:  diff.DiffType,
		})
	}
	return response
}
