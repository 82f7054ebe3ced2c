package app

type PublishOutput struct {
	MessageID string
}

type PublishBatchOutput struct {
	MessageIDs []string
	Count      int32
}

func FromMessageIDs(ids []string) PublishBatchOutput {
	return PublishBatchOutput{
		MessageIDs: ids,
		Count:      int32(len(ids)), //nolint:gosec
	}
}
