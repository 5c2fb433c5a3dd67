package firebase

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// Record é um documento lido de uma coleção, com o ID separado dos
// campos. Snapshot fica disponível para decodificação tipada (DataTo).
type Record struct {
	ID       string
	Fields   map[string]interface{}
	Snapshot *firestore.DocumentSnapshot
}

// CreateDocument cria um documento com ID gerado pelo Firestore e devolve
// esse ID.
func CreateDocument(ctx context.Context, collection string, fields interface{}) (string, error) {
	client, err := GetFirestoreClient()
	if err != nil {
		return "", err
	}

	ref, _, err := client.Collection(collection).Add(ctx, fields)
	if err != nil {
		return "", fmt.Errorf("erro ao criar documento em %s: %w", collection, err)
	}
	return ref.ID, nil
}

// GetDocument busca um documento pelo ID. Retorna (nil, nil) quando o
// documento não existe.
func GetDocument(ctx context.Context, collection, id string) (*Record, error) {
	client, err := GetFirestoreClient()
	if err != nil {
		return nil, err
	}

	doc, err := client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if doc != nil && !doc.Exists() {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar documento %s/%s: %w", collection, id, err)
	}
	return &Record{ID: doc.Ref.ID, Fields: doc.Data(), Snapshot: doc}, nil
}

// UpdateDocument aplica uma atualização parcial (merge) a um documento.
func UpdateDocument(ctx context.Context, collection, id string, partial map[string]interface{}) error {
	client, err := GetFirestoreClient()
	if err != nil {
		return err
	}

	_, err = client.Collection(collection).Doc(id).Set(ctx, partial, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("erro ao atualizar documento %s/%s: %w", collection, id, err)
	}
	return nil
}

// SetDocument grava um documento inteiro, substituindo o conteúdo.
func SetDocument(ctx context.Context, collection, id string, fields interface{}) error {
	client, err := GetFirestoreClient()
	if err != nil {
		return err
	}

	_, err = client.Collection(collection).Doc(id).Set(ctx, fields)
	if err != nil {
		return fmt.Errorf("erro ao gravar documento %s/%s: %w", collection, id, err)
	}
	return nil
}

// DeleteDocument remove um documento pelo ID.
func DeleteDocument(ctx context.Context, collection, id string) error {
	client, err := GetFirestoreClient()
	if err != nil {
		return err
	}

	_, err = client.Collection(collection).Doc(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("erro ao deletar documento %s/%s: %w", collection, id, err)
	}
	return nil
}

// ListCollection lê a coleção inteira, opcionalmente ordenada de forma
// decrescente pelo campo informado. As coleções do dashboard são pequenas
// por contrato; não há paginação.
func ListCollection(ctx context.Context, collection, orderByDesc string) ([]Record, error) {
	client, err := GetFirestoreClient()
	if err != nil {
		return nil, err
	}

	query := client.Collection(collection).Query
	if orderByDesc != "" {
		query = query.OrderBy(orderByDesc, firestore.Desc)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	records := []Record{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("erro ao iterar coleção %s: %w", collection, err)
		}
		records = append(records, Record{ID: doc.Ref.ID, Fields: doc.Data(), Snapshot: doc})
	}
	return records, nil
}
