package realtime

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"warroom-backend/utilities"
)

// Coleções abertas para assinatura pelo dashboard.
var subscribableCollections = map[string]bool{
	"tasks":          true,
	"links":          true,
	"plans":          true,
	"channels":       true,
	"media_contacts": true,
}

// Subscribable informa se a coleção aceita assinaturas via WebSocket.
func Subscribable(collection string) bool {
	return subscribableCollections[collection]
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// O CORS da API já restringe as origens; o upgrade segue a mesma
	// política liberal do roteador.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub acompanha os assinantes conectados, para log e teardown.
type Hub struct {
	mu          sync.Mutex
	subscribers map[string]string // id do assinante -> coleção
}

// NewHub cria um hub vazio.
func NewHub() *Hub {
	return &Hub{subscribers: map[string]string{}}
}

// Count devolve o número de assinantes conectados.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}

func (h *Hub) add(collection string) string {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := uuid.NewString()
	h.subscribers[id] = collection
	return id
}

func (h *Hub) remove(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subscribers, id)
}

// ServeWS faz o upgrade da conexão e repassa cada snapshot da coleção ao
// cliente como JSON. A assinatura é desfeita quando o cliente desconecta;
// escritas em voo no Firestore não são abortadas.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, collection string) {
	if !Subscribable(collection) {
		http.Error(w, "Coleção não disponível para assinatura", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		utilities.LogError(err, "Falha no upgrade da conexão WebSocket")
		return
	}
	defer conn.Close()

	stream, err := Subscribe(r.Context(), collection)
	if err != nil {
		utilities.LogError(err, fmt.Sprintf("Falha ao assinar coleção %s", collection))
		conn.WriteJSON(map[string]string{"error": "assinatura indisponível"})
		return
	}
	defer stream.Close()

	subscriberID := h.add(collection)
	defer h.remove(subscriberID)
	utilities.LogInfo("Assinante %s conectado à coleção %s", subscriberID, collection)

	// Leitor descartável: detecta a desconexão do cliente.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case snapshot, ok := <-stream.C():
			if !ok {
				utilities.LogInfo("Stream da coleção %s encerrado para o assinante %s", collection, subscriberID)
				return
			}
			if err := conn.WriteJSON(snapshot); err != nil {
				utilities.LogDebug("Assinante %s desconectado durante escrita: %v", subscriberID, err)
				return
			}
		case <-done:
			utilities.LogInfo("Assinante %s desconectou da coleção %s", subscriberID, collection)
			return
		}
	}
}
