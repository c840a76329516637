/*
Copyright © 2025 the seaice authors.
This file is part of seaice.

seaice is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

seaice is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with seaice.  If not, see <http://www.gnu.org/licenses/>.
*/

package seaiceutil

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/seaice"
)

// Preproc preprocesses the sea ice data file specified by cfg and
// writes the result for use in analysis.
func Preproc(cfg *ConfigInfo) error {
	if cfg.InputFile == "" {
		return fmt.Errorf("seaice: an input file must be specified")
	}
	if cfg.OutputFile == "" {
		return fmt.Errorf("seaice: an output file must be specified")
	}
	log := logrus.WithFields(logrus.Fields{
		"dataset": cfg.Dataset,
		"in":      cfg.InputFile,
	})

	f, err := os.Open(cfg.InputFile)
	if err != nil {
		return fmt.Errorf("seaice: opening input file: %v", err)
	}
	defer f.Close()
	ds, err := seaice.ReadDataset(f)
	if err != nil {
		return err
	}
	log.Info("read input file")

	var out *seaice.Dataset
	switch cfg.Dataset {
	case "nsidc0051":
		out, err = seaice.PreprocessNSIDC0051(ds)
	case "cdr":
		out, err = seaice.PreprocessCDR(ds, cfg.KeepVars, cfg.Rename)
	case "appx":
		out, err = seaice.PreprocessPolarAPPx(ds, cfg.DataVars)
	default:
		return fmt.Errorf("seaice: invalid dataset %q; options are "+
			"\"nsidc0051\", \"cdr\", and \"appx\"", cfg.Dataset)
	}
	if err != nil {
		return err
	}
	if tv, ok := out.Vars["time"]; ok {
		if times, err := seaice.DecodeTime(tv); err == nil && len(times) > 0 {
			log = log.WithField("time", times[0].Format(time.RFC3339))
		}
	}
	log.Info("preprocessed dataset")

	w, err := os.Create(cfg.OutputFile)
	if err != nil {
		return fmt.Errorf("seaice: creating output file: %v", err)
	}
	defer w.Close()
	if err := out.Write(w); err != nil {
		return err
	}
	log.WithField("out", cfg.OutputFile).Info("wrote output file")
	return nil
}
