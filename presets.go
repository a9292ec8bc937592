// SPDX-License-Identifier: EPL-2.0

package soundstage

import "github.com/ik5/soundstage/backend"

// builtinPresets carries the stock environment reverbs, values taken
// from the standard EFX reverb preset tables. Hosts can add their own
// with RegisterPreset.
var builtinPresets = map[string]backend.ReverbProperties{
	"generic": {
		Density: 1.0000, Diffusion: 1.0000,
		Gain: 0.3162, GainHF: 0.8913, GainLF: 1.0000,
		DecayTime: 1.4900, DecayHFRatio: 0.8300, DecayLFRatio: 1.0000,
		ReflectionsGain: 0.0500, ReflectionsDelay: 0.0070,
		LateReverbGain: 1.2589, LateReverbDelay: 0.0110,
		EchoTime: 0.2500, EchoDepth: 0.0000,
		ModulationTime: 0.2500, ModulationDepth: 0.0000,
		AirAbsorptionGainHF: 0.9943, HFReference: 5000.0, LFReference: 250.0,
		DecayHFLimit: true,
	},
	"cave": {
		Density: 1.0000, Diffusion: 1.0000,
		Gain: 0.3162, GainHF: 1.0000, GainLF: 1.0000,
		DecayTime: 2.9100, DecayHFRatio: 1.3000, DecayLFRatio: 1.0000,
		ReflectionsGain: 0.5000, ReflectionsDelay: 0.0150,
		LateReverbGain: 0.7063, LateReverbDelay: 0.0220,
		EchoTime: 0.2500, EchoDepth: 0.0000,
		ModulationTime: 0.2500, ModulationDepth: 0.0000,
		AirAbsorptionGainHF: 0.9943, HFReference: 5000.0, LFReference: 250.0,
	},
	"arena": {
		Density: 1.0000, Diffusion: 1.0000,
		Gain: 0.3162, GainHF: 0.4477, GainLF: 1.0000,
		DecayTime: 7.2400, DecayHFRatio: 0.3300, DecayLFRatio: 1.0000,
		ReflectionsGain: 0.2612, ReflectionsDelay: 0.0200,
		LateReverbGain: 1.0186, LateReverbDelay: 0.0300,
		EchoTime: 0.2500, EchoDepth: 0.0000,
		ModulationTime: 0.2500, ModulationDepth: 0.0000,
		AirAbsorptionGainHF: 0.9943, HFReference: 5000.0, LFReference: 250.0,
		DecayHFLimit: true,
	},
	"hangar": {
		Density: 1.0000, Diffusion: 1.0000,
		Gain: 0.3162, GainHF: 0.3162, GainLF: 1.0000,
		DecayTime: 10.0500, DecayHFRatio: 0.2300, DecayLFRatio: 1.0000,
		ReflectionsGain: 0.5000, ReflectionsDelay: 0.0200,
		LateReverbGain: 1.2560, LateReverbDelay: 0.0300,
		EchoTime: 0.2500, EchoDepth: 0.0000,
		ModulationTime: 0.2500, ModulationDepth: 0.0000,
		AirAbsorptionGainHF: 0.9943, HFReference: 5000.0, LFReference: 250.0,
		DecayHFLimit: true,
	},
	"alley": {
		Density: 1.0000, Diffusion: 0.3000,
		Gain: 0.3162, GainHF: 0.7328, GainLF: 1.0000,
		DecayTime: 1.4900, DecayHFRatio: 0.8600, DecayLFRatio: 1.0000,
		ReflectionsGain: 0.2500, ReflectionsDelay: 0.0070,
		LateReverbGain: 0.9954, LateReverbDelay: 0.0110,
		EchoTime: 0.1250, EchoDepth: 0.9500,
		ModulationTime: 0.2500, ModulationDepth: 0.0000,
		AirAbsorptionGainHF: 0.9943, HFReference: 5000.0, LFReference: 250.0,
		DecayHFLimit: true,
	},
	"forest": {
		Density: 1.0000, Diffusion: 0.3000,
		Gain: 0.3162, GainHF: 0.0224, GainLF: 1.0000,
		DecayTime: 1.4900, DecayHFRatio: 0.5400, DecayLFRatio: 1.0000,
		ReflectionsGain: 0.0525, ReflectionsDelay: 0.1620,
		LateReverbGain: 0.7682, LateReverbDelay: 0.0880,
		EchoTime: 0.1250, EchoDepth: 1.0000,
		ModulationTime: 0.2500, ModulationDepth: 0.0000,
		AirAbsorptionGainHF: 0.9943, HFReference: 5000.0, LFReference: 250.0,
		DecayHFLimit: true,
	},
	"city": {
		Density: 1.0000, Diffusion: 0.5000,
		Gain: 0.3162, GainHF: 0.3981, GainLF: 1.0000,
		DecayTime: 1.4900, DecayHFRatio: 0.6700, DecayLFRatio: 1.0000,
		ReflectionsGain: 0.0730, ReflectionsDelay: 0.0070,
		LateReverbGain: 0.1427, LateReverbDelay: 0.0110,
		EchoTime: 0.2500, EchoDepth: 0.0000,
		ModulationTime: 0.2500, ModulationDepth: 0.0000,
		AirAbsorptionGainHF: 0.9943, HFReference: 5000.0, LFReference: 250.0,
		DecayHFLimit: true,
	},
	"mountains": {
		Density: 1.0000, Diffusion: 0.2700,
		Gain: 0.3162, GainHF: 0.0562, GainLF: 1.0000,
		DecayTime: 1.4900, DecayHFRatio: 0.2100, DecayLFRatio: 1.0000,
		ReflectionsGain: 0.0407, ReflectionsDelay: 0.3000,
		LateReverbGain: 0.1919, LateReverbDelay: 0.1000,
		EchoTime: 0.2500, EchoDepth: 1.0000,
		ModulationTime: 0.2500, ModulationDepth: 0.0000,
		AirAbsorptionGainHF: 0.9943, HFReference: 5000.0, LFReference: 250.0,
	},
	"quarry": {
		Density: 1.0000, Diffusion: 1.0000,
		Gain: 0.3162, GainHF: 0.3162, GainLF: 1.0000,
		DecayTime: 1.4900, DecayHFRatio: 0.8300, DecayLFRatio: 1.0000,
		ReflectionsGain: 0.0000, ReflectionsDelay: 0.0610,
		LateReverbGain: 1.7783, LateReverbDelay: 0.0250,
		EchoTime: 0.1250, EchoDepth: 0.7000,
		ModulationTime: 0.2500, ModulationDepth: 0.0000,
		AirAbsorptionGainHF: 0.9943, HFReference: 5000.0, LFReference: 250.0,
		DecayHFLimit: true,
	},
	"plain": {
		Density: 1.0000, Diffusion: 0.2100,
		Gain: 0.3162, GainHF: 0.1000, GainLF: 1.0000,
		DecayTime: 1.4900, DecayHFRatio: 0.5000, DecayLFRatio: 1.0000,
		ReflectionsGain: 0.0585, ReflectionsDelay: 0.1790,
		LateReverbGain: 0.1089, LateReverbDelay: 0.1000,
		EchoTime: 0.2500, EchoDepth: 1.0000,
		ModulationTime: 0.2500, ModulationDepth: 0.0000,
		AirAbsorptionGainHF: 0.9943, HFReference: 5000.0, LFReference: 250.0,
		DecayHFLimit: true,
	},
	"parkinglot": {
		Density: 1.0000, Diffusion: 1.0000,
		Gain: 0.3162, GainHF: 1.0000, GainLF: 1.0000,
		DecayTime: 1.6500, DecayHFRatio: 1.5000, DecayLFRatio: 1.0000,
		ReflectionsGain: 0.2082, ReflectionsDelay: 0.0080,
		LateReverbGain: 0.2652, LateReverbDelay: 0.0120,
		EchoTime: 0.2500, EchoDepth: 0.0000,
		ModulationTime: 0.2500, ModulationDepth: 0.0000,
		AirAbsorptionGainHF: 0.9943, HFReference: 5000.0, LFReference: 250.0,
	},
	"underwater": {
		Density: 1.0000, Diffusion: 1.0000,
		Gain: 0.3162, GainHF: 0.0100, GainLF: 1.0000,
		DecayTime: 1.4900, DecayHFRatio: 0.1000, DecayLFRatio: 1.0000,
		ReflectionsGain: 0.5963, ReflectionsDelay: 0.0070,
		LateReverbGain: 7.0795, LateReverbDelay: 0.0110,
		EchoTime: 0.2500, EchoDepth: 0.0000,
		ModulationTime: 1.1800, ModulationDepth: 0.3480,
		AirAbsorptionGainHF: 0.9943, HFReference: 5000.0, LFReference: 250.0,
		DecayHFLimit: true,
	},
}
