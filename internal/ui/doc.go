// Package ui renders the portfolio page as a Bubble Tea program.
//
// Building blocks:
//   - View: a page region with its own model, update and view (Elm-style)
//   - GalleryView: the project grid
//   - ContactForm: contact details, inputs and the submit button
//   - ProjectModal: the project detail panel, held on an OverlayStack
//   - ToastView: the notification tray
//   - FocusManager: tab order across gallery, inputs and button
//   - Screen: the terminal side of page.Environment
//
// Interaction state is owned by page.Page; views read its snapshots and call
// its operations.
package ui
