package domain

// CommandKind identifies the mutation a Command asks the store to perform.
type CommandKind string

const (
	CommandUpdate CommandKind = "update"
	CommandDelete CommandKind = "delete"
)

// Command is a card mutation forwarded from the gallery to the store.
// For updates, Share is the merged record and Previous the record as it was
// when editing started; Logo is set only when a new logo was submitted.
// For deletes only Share is meaningful.
type Command struct {
	Kind     CommandKind
	Share    Share
	Previous Share
	Logo     *LogoItem
}

// UpdateCommand builds an update command.
func UpdateCommand(updated, previous Share, logo *LogoItem) Command {
	return Command{Kind: CommandUpdate, Share: updated, Previous: previous, Logo: logo}
}

// DeleteCommand builds a delete command.
func DeleteCommand(s Share) Command {
	return Command{Kind: CommandDelete, Share: s}
}
