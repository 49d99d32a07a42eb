// Package serialization saves and loads scalargrad model checkpoints.
//
// A checkpoint is a single YAML document:
//
//	format_version: 1
//	version: 0.1.0
//	model_type: MLP
//	architecture: {input_size: 3, sizes: [4, 4, 1]}
//	created_at: 2025-01-01T00:00:00Z
//	run_id: 5f0c...
//	checkpoint: {epoch: 100, loss: 0.0021, optimizer_type: sgd}
//	parameters:
//	  layers.0.neurons.0.b: 0.4312
//	  ...
//	checksum: 9b1d...
//
// The checksum is a hex SHA-256 over the parameters in name order and is
// verified on read.
//
// Example usage:
//
//	// Save a model
//	err := serialization.WriteFile("model.yaml", &serialization.File{
//	    Header:     serialization.NewHeader("MLP"),
//	    Parameters: model.StateDict(),
//	})
//
//	// Load a model
//	f, err := serialization.ReadFile("model.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = model.LoadStateDict(f.Parameters)
package serialization
