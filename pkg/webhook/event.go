package webhook

// Event is a webhook event.
type Event string

// EventPush is the only event notify-hook sends.
const EventPush Event = "push"

// String returns the string representation of the event.
func (e Event) String() string {
	return string(e)
}

// User is a commit identity or the pusher of an event.
type User struct {
	// Name is the user name.
	Name string `json:"name" url:"name" yaml:"name"`
	// Email is the user email.
	Email string `json:"email" url:"email" yaml:"email"`
}

// Repository is the repository an event happened in.
type Repository struct {
	// Name is the repository name.
	Name string `json:"name" url:"name" yaml:"name"`
	// Description is the repository description.
	Description string `json:"description,omitempty" url:"description,omitempty" yaml:"description,omitempty"`
	// Owner is the repository owner.
	Owner *User `json:"owner,omitempty" url:"owner,omitempty" yaml:"owner,omitempty"`
}

// Commit is a commit in a push event.
type Commit struct {
	// ID is the commit SHA.
	ID string `json:"id" url:"id" yaml:"id"`
	// TreeID is the SHA of the commit tree.
	TreeID string `json:"tree_id" url:"tree_id" yaml:"tree_id"`
	// Message is the full commit message.
	Message string `json:"message" url:"message" yaml:"message"`
	// Timestamp is the commit time in RFC 3339 format.
	Timestamp string `json:"timestamp" url:"timestamp" yaml:"timestamp"`
	// Author is the commit author.
	Author User `json:"author" url:"author" yaml:"author"`
	// Committer is the commit committer.
	Committer User `json:"committer" url:"committer" yaml:"committer"`
	// Added are the paths the commit added.
	Added []string `json:"added" url:"added" yaml:"added"`
	// Removed are the paths the commit removed.
	Removed []string `json:"removed" url:"removed" yaml:"removed"`
	// Modified are the paths the commit modified or renamed.
	Modified []string `json:"modified" url:"modified" yaml:"modified"`
}

// PushEvent is a push event.
type PushEvent struct {
	// Ref is the ref that was pushed.
	Ref string `json:"ref" url:"ref" yaml:"ref"`
	// Before is the commit SHA the ref pointed to before the push.
	Before string `json:"before" url:"before" yaml:"before"`
	// After is the commit SHA the ref points to after the push.
	After string `json:"after" url:"after" yaml:"after"`
	// Size is the number of commits in the push.
	Size int `json:"size" url:"size" yaml:"size"`
	// Commits is the list of pushed commits.
	Commits []Commit `json:"commits" url:"commits" yaml:"commits"`
	// HeadCommit is the commit the ref points to.
	HeadCommit Commit `json:"head_commit" url:"head_commit" yaml:"head_commit"`
	// Repository is the repository payload.
	Repository Repository `json:"repository" url:"repository" yaml:"repository"`
	// Pusher is the committer of the head commit.
	Pusher User `json:"pusher" url:"pusher" yaml:"pusher"`
}

// Event returns the event type.
func (PushEvent) Event() Event {
	return EventPush
}
