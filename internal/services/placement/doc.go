// Package placement hands a generated barcode to the page-layout side.
//
// Sink is the single capability the orchestrator needs: put the file at a
// path into a named page item of the open document. The InDesign sink drives
// Adobe InDesign through osascript; Command runs any executable with the path
// and item name appended; Writer simply prints the path.
package placement
