// Package chartio reads and writes seating charts as JSON files.
//
// # JSON Format
//
// A chart file is an object with a sections array. Each section declares
// its containerType and lists either rows or tables:
//
//	{
//	  "sections": [
//	    {
//	      "id": "main",
//	      "name": "Main floor",
//	      "containerType": "TABLES",
//	      "tables": [
//	        {"id": "t1", "number": 1, "shape": "ROUND", "x": 100, "y": 100,
//	         "width": 120, "height": 120, "capacity": 8}
//	      ]
//	    }
//	  ]
//	}
//
// A bare array of sections is accepted as well, which is the shape most
// seat-map exports use.
//
// # Import
//
// [ReadJSON] decodes from any io.Reader and [ImportJSON] from a path. Both
// run [chart.Chart.Validate], so ids are unique and shapes are known once a
// chart has been read. Seat lists that disagree with capacity are kept as
// they are: the seat layout engine derives positions from capacity anyway.
//
// # Export
//
// [WriteJSON] and [ExportJSON] write the indented object form. Export
// followed by import yields an equal chart.
//
// [chart.Chart.Validate]: github.com/matzehuels/seatplan/pkg/chart.Chart.Validate
package chartio
