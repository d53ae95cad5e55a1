package persistence

import (
	"context"
	"encoding/json"
	"os"
	"strconv"
	"sync"

	"github.com/samber/lo"
)

// JSONNumberStore keeps light numbers in a JSON object mapping number to
// entity id, the emulated_hue_ids.json layout.
type JSONNumberStore struct {
	filepath string
	mu       sync.Mutex
	numbers  map[string]string
}

func NewJSONNumberStore(filepath string) *JSONNumberStore {
	return &JSONNumberStore{filepath: filepath}
}

func (r *JSONNumberStore) Number(ctx context.Context, entityID string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.load(); err != nil {
		return "", err
	}
	for number, id := range r.numbers {
		if id == entityID {
			return number, nil
		}
	}

	number := strconv.Itoa(r.maxNumber() + 1)
	r.numbers[number] = entityID
	if err := r.save(); err != nil {
		delete(r.numbers, number)
		return "", err
	}
	return number, nil
}

func (r *JSONNumberStore) EntityID(ctx context.Context, number string) (string, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.load(); err != nil {
		return "", false, err
	}
	entityID, ok := r.numbers[number]
	return entityID, ok, nil
}

func (r *JSONNumberStore) All(ctx context.Context) (map[string]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.load(); err != nil {
		return nil, err
	}
	return lo.Assign(r.numbers), nil
}

// load reads the file once; a missing file is an empty mapping.
func (r *JSONNumberStore) load() error {
	if r.numbers != nil {
		return nil
	}

	data, err := os.ReadFile(r.filepath)
	if err != nil {
		if os.IsNotExist(err) {
			r.numbers = make(map[string]string)
			return nil
		}
		return err
	}

	numbers := make(map[string]string)
	if err := json.Unmarshal(data, &numbers); err != nil {
		return err
	}
	r.numbers = numbers
	return nil
}

func (r *JSONNumberStore) save() error {
	data, err := json.MarshalIndent(r.numbers, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.filepath, data, 0644)
}

func (r *JSONNumberStore) maxNumber() int {
	highest := 0
	for k := range r.numbers {
		if n, err := strconv.Atoi(k); err == nil && n > highest {
			highest = n
		}
	}
	return highest
}
