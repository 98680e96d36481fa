package controller

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -source=$GOFILE -destination=mock_$GOFILE -package=$GOPACKAGE

// FrameID identifies a pending frame request.
type FrameID uint64

// Renderer receives a Frame after every command and on every refresh frame.
type Renderer interface {
	Render(frame Frame)
}

// FrameScheduler is a cancellable per-frame callback facility.
// A requested callback fires at most once, on the caller's event loop.
// A cancelled request never fires; CancelFrame of an unknown or already
// fired ID does nothing.
type FrameScheduler interface {
	RequestFrame(callback func()) FrameID
	CancelFrame(id FrameID)
}
