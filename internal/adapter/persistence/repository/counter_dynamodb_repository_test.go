package repository

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeCounterDB backs the counter repository with in-memory tables and real
// conditional-write semantics, so the CAS loop sees the same cancellation
// reasons DynamoDB would produce.
type fakeCounterDB struct {
	mu            sync.Mutex
	counterExists bool
	counter       int
	clients       map[string]int // client id -> client_number, 0 = unnumbered

	raceOnce   bool // simulate one competing increment landing first
	alwaysRace bool // every transaction loses the counter race

	transactCalls int
}

func newFakeCounterDB(clients map[string]int) *fakeCounterDB {
	return &fakeCounterDB{clients: clients}
}

func (f *fakeCounterDB) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if aws.ToString(in.TableName) == "counters" {
		if !f.counterExists {
			return &dynamodb.GetItemOutput{}, nil
		}
		return &dynamodb.GetItemOutput{Item: map[string]types.AttributeValue{
			"name":    &types.AttributeValueMemberS{Value: "clients"},
			"current": &types.AttributeValueMemberN{Value: strconv.Itoa(f.counter)},
		}}, nil
	}

	id := in.Key["id"].(*types.AttributeValueMemberS).Value
	number, ok := f.clients[id]
	if !ok {
		return &dynamodb.GetItemOutput{}, nil
	}
	item := map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
	if number != 0 {
		item["client_number"] = &types.AttributeValueMemberN{Value: strconv.Itoa(number)}
	}
	return &dynamodb.GetItemOutput{Item: item}, nil
}

func (f *fakeCounterDB) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transactCalls++

	reasons := []types.CancellationReason{
		{Code: aws.String("None")},
		{Code: aws.String("None")},
	}
	canceled := false

	if f.raceOnce || f.alwaysRace {
		f.raceOnce = false
		f.counter++
		f.counterExists = true
		reasons[0].Code = aws.String("ConditionalCheckFailed")
		return nil, &types.TransactionCanceledException{CancellationReasons: reasons}
	}

	counterWrite := in.TransactItems[0]
	var next int
	if counterWrite.Put != nil {
		next = numAttr(counterWrite.Put.Item["current"])
		if f.counterExists {
			reasons[0].Code = aws.String("ConditionalCheckFailed")
			canceled = true
		}
	} else {
		expected := numAttr(counterWrite.Update.ExpressionAttributeValues[":current"])
		next = numAttr(counterWrite.Update.ExpressionAttributeValues[":next"])
		if !f.counterExists || f.counter != expected {
			reasons[0].Code = aws.String("ConditionalCheckFailed")
			canceled = true
		}
	}

	clientUpdate := in.TransactItems[1].Update
	id := clientUpdate.Key["id"].(*types.AttributeValueMemberS).Value
	stamped := numAttr(clientUpdate.ExpressionAttributeValues[":n"])
	existing, ok := f.clients[id]
	if !ok || existing != 0 {
		reasons[1].Code = aws.String("ConditionalCheckFailed")
		canceled = true
	}

	if canceled {
		return nil, &types.TransactionCanceledException{CancellationReasons: reasons}
	}

	f.counterExists = true
	f.counter = next
	f.clients[id] = stamped
	return &dynamodb.TransactWriteItemsOutput{}, nil
}

func numAttr(v types.AttributeValue) int {
	n, _ := strconv.Atoi(v.(*types.AttributeValueMemberN).Value)
	return n
}

func counterRepo(db *fakeCounterDB) *CounterDynamoRepository {
	return &CounterDynamoRepository{ddb: db, tableName: "counters", clientsTable: "clients"}
}

func TestCounterDynamoRepository_NextClientNumber(t *testing.T) {
	t.Run("first assignment creates the counter", func(t *testing.T) {
		db := newFakeCounterDB(map[string]int{"c-1": 0})
		repo := counterRepo(db)

		n, err := repo.NextClientNumber(context.Background(), "c-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 1 {
			t.Fatalf("expected 1, got %d", n)
		}
		if db.counter != 1 || db.clients["c-1"] != 1 {
			t.Fatalf("unexpected state counter=%d client=%d", db.counter, db.clients["c-1"])
		}
	})

	t.Run("increments an existing counter", func(t *testing.T) {
		db := newFakeCounterDB(map[string]int{"c-2": 0})
		db.counterExists = true
		db.counter = 41
		repo := counterRepo(db)

		n, err := repo.NextClientNumber(context.Background(), "c-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 42 {
			t.Fatalf("expected 42, got %d", n)
		}
	})

	t.Run("counter race retries with a fresh read", func(t *testing.T) {
		db := newFakeCounterDB(map[string]int{"c-1": 0})
		db.raceOnce = true
		repo := counterRepo(db)

		n, err := repo.NextClientNumber(context.Background(), "c-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// The simulated competitor took 1; the retry reads the fresh value.
		if n != 2 {
			t.Fatalf("expected 2, got %d", n)
		}
		if db.transactCalls != 2 {
			t.Fatalf("expected 2 transactions, got %d", db.transactCalls)
		}
	})

	t.Run("redelivered event resolves to the existing number", func(t *testing.T) {
		db := newFakeCounterDB(map[string]int{"c-1": 7})
		db.counterExists = true
		db.counter = 7
		repo := counterRepo(db)

		n, err := repo.NextClientNumber(context.Background(), "c-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 7 {
			t.Fatalf("expected existing number 7, got %d", n)
		}
		if db.transactCalls != 1 {
			t.Fatalf("expected no retry, got %d transactions", db.transactCalls)
		}
		if db.counter != 7 {
			t.Fatalf("counter moved to %d on a redelivery", db.counter)
		}
	})

	t.Run("missing client is an error, not a retry", func(t *testing.T) {
		db := newFakeCounterDB(map[string]int{})
		repo := counterRepo(db)

		_, err := repo.NextClientNumber(context.Background(), "ghost")
		if err == nil || !strings.Contains(err.Error(), "not found") {
			t.Fatalf("expected not-found error, got %v", err)
		}
		if db.transactCalls != 1 {
			t.Fatalf("expected no retry, got %d transactions", db.transactCalls)
		}
	})

	t.Run("gives up after bounded attempts", func(t *testing.T) {
		db := newFakeCounterDB(map[string]int{"c-1": 0})
		db.alwaysRace = true
		repo := counterRepo(db)

		_, err := repo.NextClientNumber(context.Background(), "c-1")
		if err == nil || !strings.Contains(err.Error(), "gave up") {
			t.Fatalf("expected exhaustion error, got %v", err)
		}
		if db.transactCalls != counterMaxAttempts {
			t.Fatalf("expected %d attempts, got %d", counterMaxAttempts, db.transactCalls)
		}
	})

	t.Run("sequential assignments are dense and unique", func(t *testing.T) {
		db := newFakeCounterDB(map[string]int{"c-1": 0, "c-2": 0, "c-3": 0, "c-4": 0, "c-5": 0})
		repo := counterRepo(db)

		seen := make(map[int]bool)
		for _, id := range []string{"c-1", "c-2", "c-3", "c-4", "c-5"} {
			n, err := repo.NextClientNumber(context.Background(), id)
			if err != nil {
				t.Fatalf("unexpected error for %s: %v", id, err)
			}
			seen[n] = true
		}
		for n := 1; n <= 5; n++ {
			if !seen[n] {
				t.Fatalf("missing number %d in %v", n, seen)
			}
		}
	})

	t.Run("concurrent assignments yield a dense unique range", func(t *testing.T) {
		ids := []string{"c-1", "c-2", "c-3", "c-4", "c-5"}
		clients := make(map[string]int, len(ids))
		for _, id := range ids {
			clients[id] = 0
		}
		db := newFakeCounterDB(clients)
		db.counterExists = true
		db.counter = 10
		repo := counterRepo(db)

		// With 5 contenders each CAS loss is caused by another contender's
		// single commit, so no caller can lose more than 4 times and the
		// 5-attempt bound is never hit.
		var wg sync.WaitGroup
		results := make([]int, len(ids))
		errs := make([]error, len(ids))
		for i, id := range ids {
			wg.Add(1)
			go func(i int, id string) {
				defer wg.Done()
				results[i], errs[i] = repo.NextClientNumber(context.Background(), id)
			}(i, id)
		}
		wg.Wait()

		seen := make(map[int]bool)
		for i := range ids {
			if errs[i] != nil {
				t.Fatalf("unexpected error for %s: %v", ids[i], errs[i])
			}
			if seen[results[i]] {
				t.Fatalf("duplicate number %d in %v", results[i], results)
			}
			seen[results[i]] = true
		}
		for n := 11; n <= 15; n++ {
			if !seen[n] {
				t.Fatalf("missing number %d in %v", n, results)
			}
		}
	})
}
