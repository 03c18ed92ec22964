package streams

import (
	"context"
	"encoding/binary"
	"hash/fnv"
)

type PartitionedQueue[T any] struct {
	partitions []chan T
}

func channelsNewPartitionedQueue[T any](numPartitions, buffer int) *PartitionedQueue[T] {
	channels := make([]chan T, numPartitions)
	for i := range channels {
		channels[i] = make(chan T, buffer)
	}
	return &PartitionedQueue[T]{partitions: channels}
}

const (
	defaultNumPartitions = 1
	defaultBuffer        = 16
)

// NewPartitionedQueue returns a single-lane queue; every message is handled in publish order.
func NewPartitionedQueue[T any]() *PartitionedQueue[T] {
	return channelsNewPartitionedQueue[T](defaultNumPartitions, defaultBuffer)
}

// NewPartitionedQueueWith returns a queue with numPartitions lanes of the given buffer size.
func NewPartitionedQueueWith[T any](numPartitions, buffer int) *PartitionedQueue[T] {
	return channelsNewPartitionedQueue[T](max(numPartitions, 1), max(buffer, 0))
}

func (queue *PartitionedQueue[T]) PartitionCount() int { return len(queue.partitions) }

// Publish blocks until the lane of partitionKey accepts msg or ctx is done.
func (queue *PartitionedQueue[T]) Publish(ctx context.Context, partitionKey string, msg T) error {
	idx := partitionIndex(partitionKey, len(queue.partitions))
	select {
	case queue.partitions[idx] <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Pending returns the number of buffered messages across all lanes.
func (queue *PartitionedQueue[T]) Pending() int {
	n := 0
	for _, ch := range queue.partitions {
		n += len(ch)
	}
	return n
}

func (queue *PartitionedQueue[T]) Close() {
	for _, ch := range queue.partitions {
		close(ch)
	}
}

func partitionIndex(key string, n int) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(key))
	sum := hash.Sum(nil)
	v := binary.LittleEndian.Uint32(sum)
	return int(v % uint32(n))
}
