package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/websocket"
	"github.com/minaorangina/suits/config"
	"github.com/minaorangina/suits/deck"
	"github.com/minaorangina/suits/engine"
	"github.com/minaorangina/suits/game"
	"github.com/minaorangina/suits/store"
)

type NewGameReq struct {
	Difficulty string `json:"difficulty"`
	FaceValues string `json:"face_values,omitempty"`
}

type NewGameRes struct {
	GameID     string `json:"game_id"`
	Difficulty string `json:"difficulty"`
	FaceValues string `json:"face_values"`
}

type GetGameRes struct {
	GameID     string `json:"game_id"`
	Status     string `json:"status"`
	Difficulty string `json:"difficulty"`
	Phase      string `json:"phase"`
	DeckCount  int    `json:"deck_count"`
	Outcome    string `json:"outcome"`
	Reason     string `json:"reason"`
}

// GameServer is a game server
type GameServer struct {
	store store.GameStore
	cfg   config.Config

	mu    sync.Mutex
	seeds *rand.Rand

	upgrader websocket.Upgrader
	http.Server
}

// NewServer creates a new GameServer
func NewServer(s store.GameStore, cfg config.Config) *GameServer {
	g := &GameServer{store: s, cfg: cfg}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.seeds = rand.New(rand.NewSource(seed))

	g.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     g.checkOrigin,
	}

	router := http.NewServeMux()
	router.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("suits"))
	}))
	router.Handle("/new", http.HandlerFunc(g.HandleNewGame))
	router.Handle("/game/", http.HandlerFunc(g.HandleFindGame))
	router.Handle("/ws", http.HandlerFunc(g.HandleWS))

	cors := handlers.CORS(
		handlers.AllowedOrigins(g.allowedOrigins()),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	g.Addr = cfg.Addr()
	g.Handler = handlers.LoggingHandler(log.Writer(), cors(router))

	return g
}

// ServeHTTP serves http
func (g *GameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.Handler.ServeHTTP(w, r)
}

// HandleNewGame deals a new game and stores it until a player connects
func (g *GameServer) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var data NewGameReq
	err := json.NewDecoder(r.Body).Decode(&data)
	defer r.Body.Close()
	if err != nil {
		writeParseError(err, w, r)
		return
	}

	if data.Difficulty == "" {
		data.Difficulty = g.cfg.Difficulty
	}
	difficulty, err := game.ParseDifficulty(data.Difficulty)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	if data.FaceValues == "" {
		data.FaceValues = g.cfg.FaceValues
	}
	values, err := deck.ParseFaceValues(data.FaceValues)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	s, err := game.NewGame(game.Opts{
		Difficulty: difficulty,
		Values:     values,
		Rand:       g.newRand(),
	})
	if err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	gameID := store.NewID()
	ge, err := engine.NewGameEngine(engine.GameEngineOpts{GameID: gameID, Game: s})
	if err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := g.store.AddGame(ge); err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, NewGameRes{
		GameID:     gameID,
		Difficulty: difficulty.String(),
		FaceValues: values.String(),
	})
}

// HandleFindGame summarises a stored game
func (g *GameServer) HandleFindGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	gameID := strings.TrimPrefix(r.URL.Path, "/game/")
	if gameID == "" {
		writeBadRequest(w, "missing game ID")
		return
	}

	ge, err := g.store.FindGame(gameID)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(unknownGameIDMsg(gameID)))
		return
	}

	s := ge.State()
	writeJSON(w, http.StatusOK, GetGameRes{
		GameID:     gameID,
		Status:     ge.PlayState().String(),
		Difficulty: s.Difficulty().String(),
		Phase:      s.Phase().String(),
		DeckCount:  s.DeckSize(),
		Outcome:    s.Outcome().String(),
		Reason:     s.Reason().String(),
	})
}

// HandleWS connects the player to a stored game and plays it to the end.
// The game leaves the store when the session ends, however it ends.
func (g *GameServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game_id")
	if gameID == "" {
		log.Println("missing game ID")
		writeBadRequest(w, "missing game ID")
		return
	}

	// the player joins before the upgrade so a second connection gets a 409
	player := engine.NewWSPlayer()
	if err := g.store.AddPlayerToGame(gameID, player); err != nil {
		if errors.Is(err, store.ErrUnknownGameID) {
			writeBadRequest(w, unknownGameIDMsg(gameID))
			return
		}
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(err.Error()))
		return
	}

	ge, err := g.store.FindGame(gameID)
	if err != nil {
		log.Println(err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	rawConn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader has already replied
		log.Println(err)
		g.endGame(gameID)
		return
	}
	player.Connect(rawConn)

	go func() {
		defer g.endGame(gameID)

		if _, err := ge.Play(); err != nil {
			log.Printf("game %s stopped: %v", gameID, err)
			player.Close(websocket.CloseInternalServerErr, err.Error())
			return
		}
		player.Close(websocket.CloseNormalClosure, "game over")
	}()
}

func (g *GameServer) endGame(gameID string) {
	if err := g.store.RemoveGame(gameID); err != nil {
		log.Println(err)
	}
}

func (g *GameServer) newRand() *rand.Rand {
	g.mu.Lock()
	defer g.mu.Unlock()
	return rand.New(rand.NewSource(g.seeds.Int63()))
}

func (g *GameServer) allowedOrigins() []string {
	if len(g.cfg.AllowedOrigins) == 0 {
		return []string{"*"}
	}
	return g.cfg.AllowedOrigins
}

func (g *GameServer) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || len(g.cfg.AllowedOrigins) == 0 {
		return true
	}
	for _, allowed := range g.cfg.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}

func unknownGameIDMsg(unknownID string) string {
	return fmt.Sprintf("unknown game ID '%s'", unknownID)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	bytes, err := json.Marshal(payload)
	if err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
}

func writeBadRequest(w http.ResponseWriter, text string) {
	w.Header().Add("Content-Type", "text/plain")
	w.WriteHeader(http.StatusBadRequest)
	w.Write([]byte(text))
}

func writeParseError(err error, w http.ResponseWriter, r *http.Request) {
	log.Println(err.Error())
	if err == io.EOF {
		writeBadRequest(w, "Missing body")
		return
	}
	writeBadRequest(w, "Malformed body")
}
