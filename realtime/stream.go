// Package realtime entrega snapshots de coleções do Firestore para o
// dashboard. Cada emissão é o conjunto COMPLETO e atual de registros da
// coleção — um snapshot posterior substitui integralmente o anterior, de
// modo que o leitor sempre observa uma coleção autoconsistente, ainda que
// possivelmente defasada.
package realtime

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/api/iterator"

	"warroom-backend/firebase"
	"warroom-backend/utilities"
)

// Snapshot é uma emissão: o conjunto completo de registros da coleção.
type Snapshot struct {
	Collection string                   `json:"collection"`
	Records    []map[string]interface{} `json:"records"`
}

// Stream é uma assinatura cancelável de uma coleção. Close interrompe os
// callbacks futuros; requisições já em voo não são abortadas.
type Stream struct {
	ch        chan Snapshot
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// C expõe o canal de emissões. O canal é fechado quando a assinatura
// termina (Close ou erro do listener).
func (s *Stream) C() <-chan Snapshot {
	return s.ch
}

// Close encerra a assinatura. Idempotente.
func (s *Stream) Close() {
	s.closeOnce.Do(s.cancel)
}

// Subscribe abre uma assinatura de snapshots sobre uma coleção. O stream
// emite imediatamente o estado atual e depois a cada mudança remota.
func Subscribe(ctx context.Context, collection string) (*Stream, error) {
	client, err := firebase.GetFirestoreClient()
	if err != nil {
		return nil, err
	}

	streamCtx, cancel := context.WithCancel(ctx)
	stream := &Stream{
		ch:     make(chan Snapshot, 1),
		cancel: cancel,
	}

	snapshots := client.Collection(collection).Snapshots(streamCtx)

	go func() {
		defer close(stream.ch)
		defer snapshots.Stop()

		for {
			qsnap, err := snapshots.Next()
			if err != nil {
				if streamCtx.Err() == nil {
					utilities.LogError(err, fmt.Sprintf("Listener da coleção %s encerrado", collection))
				}
				return
			}

			records := []map[string]interface{}{}
			docs := qsnap.Documents
			for {
				doc, err := docs.Next()
				if err == iterator.Done {
					break
				}
				if err != nil {
					utilities.LogError(err, fmt.Sprintf("Erro ao iterar snapshot da coleção %s", collection))
					return
				}
				fields := doc.Data()
				fields["id"] = doc.Ref.ID
				records = append(records, fields)
			}

			emit := Snapshot{Collection: collection, Records: records}
			select {
			case stream.ch <- emit:
			case <-streamCtx.Done():
				return
			default:
				// Canal cheio: descarta a emissão antiga e entrega a
				// mais recente, já que um snapshot substitui o anterior.
				select {
				case <-stream.ch:
				default:
				}
				stream.ch <- emit
			}
		}
	}()

	return stream, nil
}
