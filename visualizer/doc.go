// Package visualizer ties the step generators to a playback controller.
//
// Each algorithm family is a strategy selected by Kind. A Job pairs a Kind
// with the call that generates its trace; a Session owns one controller and
// runs jobs against it:
//
//	s := visualizer.NewSession[sorting.State]()
//	if err := s.Run(visualizer.Sort(sorting.Bubble, values)); err != nil {
//		// show err; the previous trace and cursor are unchanged
//	}
//	_ = s.Controller().Play()
//
// Invalid input never reaches the controller: Run returns the generator
// error and leaves the loaded trace, the cursor and the state as they were.
package visualizer
